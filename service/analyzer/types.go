package analyzer

import (
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"go.uber.org/zap"
)

const (
	labelNetwork = "NETWORK_ADDRESS--RESERVED"
	labelGateway = "GATEWAY_ADDRESS--RESERVED"
)

type service struct {
	logger *zap.Logger
}

type AnalyzerService interface {
	Analyze(regions []model.Region, records *store.Records, threshold float64) model.AnalysisReport
}
