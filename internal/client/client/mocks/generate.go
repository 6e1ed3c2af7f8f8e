// Package mocks provides gomock implementations of the API client
// interfaces for controller tests.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/client/client/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=client_mock.go github.com/dmitrijs2005/siteadmin/internal/client/client Client
