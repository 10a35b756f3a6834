package mocks

//go:generate mockgen -destination=./mock_bar.go -package=mocks github.com/rxtech-lab/argo-indicators/pkg/indicator Bar
