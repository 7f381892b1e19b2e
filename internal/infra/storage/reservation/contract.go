package reservation

import "github.com/avelinemakeup/AM-BookingService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс txmanager для работы с БД
// (поддерживает *sql.DB и *sql.Tx из контекста транзакции)
type DBExecutor = txmanager.DBExecutor
