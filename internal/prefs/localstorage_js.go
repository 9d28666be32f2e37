//go:build js && wasm

package prefs

import (
	"fmt"
	"syscall/js"
)

// LocalStorage is a Store over the browser's window.localStorage.
type LocalStorage struct {
	storage js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{storage: js.Global().Get("localStorage")}
}

func (l *LocalStorage) Get(key string) (string, bool) {
	if !l.available() {
		return "", false
	}
	v := l.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// Set fails when storage is unavailable or the browser refuses the write (quota, private mode).
func (l *LocalStorage) Set(key, value string) (err error) {
	if !l.available() {
		return fmt.Errorf("localStorage unavailable")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage set %s: %v", key, r)
		}
	}()
	l.storage.Call("setItem", key, value)
	return nil
}

func (l *LocalStorage) available() bool {
	return !l.storage.IsNull() && !l.storage.IsUndefined()
}
