package locks

import "errors"

var (
	// ErrUnknownSlot возвращается для id слота вне каталога
	ErrUnknownSlot = errors.New("unknown slot id")

	// ErrStoreUnavailable возвращается при сбое хранилища блокировок
	ErrStoreUnavailable = errors.New("lock store unavailable")
)
