package models

type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

var roleHumanName = map[UserRole]string{
	UserRoleOwner: "Владелец",
	UserRoleAdmin: "Администратор",
	UserRoleUser:  "Пользователь",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsStaff - роль с доступом к админке и редакционным флагам
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleOwner
}

func (r UserRole) IsOwner() bool {
	return r == UserRoleOwner
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
