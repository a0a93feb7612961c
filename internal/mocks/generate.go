package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Client --dir ../infrastructure/upstream --output infrastructure/upstream --outpkg upstreammock --filename client_mock.go
