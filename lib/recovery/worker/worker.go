package recoveryworker

import (
	"context"
	"time"

	recoveryhandler "impar-backend/lib/recovery"
	baseworker "impar-backend/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("RecoveryCodeWorker", 15*time.Second, 60*time.Minute),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

// Помечаем протухшие коды восстановления, чтобы ими нельзя было воспользоваться
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	expired, err := recoveryhandler.Instance.ExpireStale()
	if err != nil {
		logger.WithError(err).Error("Ошибка пометки просроченных кодов восстановления")
		return
	}
	if expired != 0 {
		logger.WithField("expired", expired).Info("Просроченные коды восстановления помечены")
	}
}
