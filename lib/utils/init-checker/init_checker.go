package initchecker

import (
	"reflect"

	log "github.com/sirupsen/logrus"
)

// CheckInit принимает пары "имя зависимости, значение" и останавливает
// сервис, если какая-то из зависимостей осталась не инициализированной
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: first argument of pair must be string")
		}
		if isNil(pairs[i+1]) {
			log.Fatalf("Зависимость %s не инициализирована", name)
		}
	}
}

// isNil ловит и типизированный nil внутри интерфейса
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
