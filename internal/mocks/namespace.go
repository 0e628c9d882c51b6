package mocks

import (
	"github.com/brettbedarf/imfs/namespace"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNamespace implements imfs.Namespace for testing across packages
type MockNamespace struct {
	mock.Mock
}

func (m *MockNamespace) ID() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

func (m *MockNamespace) Pwd() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNamespace) Ls(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockNamespace) Mkdir(name, path string) error {
	args := m.Called(name, path)
	return args.Error(0)
}

func (m *MockNamespace) Touch(name, path string) error {
	args := m.Called(name, path)
	return args.Error(0)
}

func (m *MockNamespace) Cd(target string) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *MockNamespace) Read(filepath string) (string, error) {
	args := m.Called(filepath)
	return args.String(0), args.Error(1)
}

func (m *MockNamespace) Write(filepath, contents string) error {
	args := m.Called(filepath, contents)
	return args.Error(0)
}

func (m *MockNamespace) Rmdir(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockNamespace) Rm(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockNamespace) Find(name string) []string {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockNamespace) Stat(path string) (namespace.Kind, error) {
	args := m.Called(path)
	return args.Get(0).(namespace.Kind), args.Error(1)
}

func (m *MockNamespace) Tree() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNamespace) Cls() {
	m.Called()
}
