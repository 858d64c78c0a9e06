package repository

import "time"

var retryBackoff = 200 * time.Millisecond

// retry выполняет fn и повторяет его не более attempts раз с линейной
// задержкой. При attempts == 0 повторов нет — каждый сбой терминален
// для действия пользователя. Повторяются только идемпотентные чтения.
func retry(attempts int, fn func() error) error {
	err := fn()
	for i := 0; i < attempts && err != nil; i++ {
		time.Sleep(time.Duration(i+1) * retryBackoff)
		err = fn()
	}
	return err
}
