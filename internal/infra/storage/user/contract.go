package user

import "github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
