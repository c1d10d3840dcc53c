package service

import (
	"context"

	"github.com/campuslab/printbooth/internal/model"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/repo"
)

// SeedManagerParams describes the default booth manager the provisioning
// command ensures. The password is supplied at run time, never baked in.
type SeedManagerParams struct {
	Name          string
	Email         string
	Password      string
	BoothName     string
	BoothLocation string
	BoothCode     string
	PaperCapacity int
	PrinterName   string
	PrinterModel  string
}

// EnsureSeedManager is idempotent: if a manager with the seed email
// already exists it is returned untouched and created is false.
func EnsureSeedManager(ctx context.Context, managers repo.BoothManagerRepository, params SeedManagerParams) (created bool, m *model.BoothManager, err error) {
	if params.Password == "" {
		return false, nil, appErr.ErrInvalid
	}
	existing, err := managers.GetByEmail(ctx, params.Email)
	if err == nil {
		existing.PasswordHash = ""
		return false, existing, nil
	}
	if !appErr.IsNotFound(err) {
		return false, nil, err
	}
	m = &model.BoothManager{
		Name:          params.Name,
		Email:         params.Email,
		Password:      params.Password,
		BoothName:     params.BoothName,
		BoothLocation: params.BoothLocation,
		BoothCode:     params.BoothCode,
		PaperCapacity: params.PaperCapacity,
		PrinterName:   params.PrinterName,
		PrinterModel:  params.PrinterModel,
	}
	m, err = managers.Create(ctx, m)
	if err != nil {
		return false, nil, err
	}
	m.PasswordHash = ""
	return true, m, nil
}
