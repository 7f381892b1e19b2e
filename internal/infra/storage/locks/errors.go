package locks

import "errors"

var (
	// ErrStore возвращается при ошибках обращения к хранилищу блокировок.
	// Отличает сбой хранилища от no-op "слот уже в нужном состоянии".
	ErrStore = errors.New("locks.repository: store error")
)
