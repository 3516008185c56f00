package subscription

import (
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
