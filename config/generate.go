package config

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -source=config.go -destination=mocks/config.go -package=mocks
