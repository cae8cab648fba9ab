package ws

import "errors"

var (
	ErrSendQueueFull = errors.New("send queue is full")
	ErrClosed        = errors.New("client is closed")
)
