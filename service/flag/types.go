package flag

import "github.com/elC0mpa/ipam-doctor/model"

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
	Parse(args []string) (model.Flags, error)
}
