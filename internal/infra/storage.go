package infra

import "os"

// LocalFileStore removes temporary upload files from the local disk.
type LocalFileStore struct{}

func NewLocalFileStore() *LocalFileStore {
	return &LocalFileStore{}
}

func (LocalFileStore) Remove(path string) error {
	return os.Remove(path)
}
