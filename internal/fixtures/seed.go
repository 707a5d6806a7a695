package fixtures

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
)

// Repositories bundles everything SeedDefaults writes to.
type Repositories struct {
	Shifts       roster.ShiftRepository
	Skills       skill.SkillRepository
	Areas        area.AreaRepository
	Designations designation.DesignationRepository
	Licenses     license.LicenseRepository
}

// SeedDefaults inserts the default master data and shift catalogue,
// skipping anything that already exists. Safe to run on every startup.
func SeedDefaults(ctx context.Context, repos Repositories) error {
	for _, shift := range GetDefaultShifts() {
		_, err := repos.Shifts.GetByName(ctx, shift.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, roster.ErrShiftNotFound) {
			return fmt.Errorf("failed to check shift %q: %w", shift.Name, err)
		}
		if _, err := repos.Shifts.Create(ctx, shift); err != nil {
			return fmt.Errorf("failed to seed shift %q: %w", shift.Name, err)
		}
	}

	existingSkills, err := repos.Skills.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list skills: %w", err)
	}
	for _, s := range GetDefaultSkills() {
		if containsName(existingSkills, s.Name, func(s skill.Skill) string { return s.Name }) {
			continue
		}
		if _, err := repos.Skills.Create(ctx, s); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", s.Name, err)
		}
	}

	existingAreas, err := repos.Areas.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list areas: %w", err)
	}
	for _, a := range GetDefaultAreas() {
		if containsName(existingAreas, a.Name, func(a area.Area) string { return a.Name }) {
			continue
		}
		if _, err := repos.Areas.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed area %q: %w", a.Name, err)
		}
	}

	existingDesignations, err := repos.Designations.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list designations: %w", err)
	}
	for _, d := range GetDefaultDesignations() {
		if containsName(existingDesignations, d.Name, func(d designation.Designation) string { return d.Name }) {
			continue
		}
		if _, err := repos.Designations.Create(ctx, d); err != nil {
			return fmt.Errorf("failed to seed designation %q: %w", d.Name, err)
		}
	}

	existingLicenses, err := repos.Licenses.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list licenses: %w", err)
	}
	for _, l := range GetDefaultLicenses() {
		if containsName(existingLicenses, l.Name, func(l license.License) string { return l.Name }) {
			continue
		}
		if _, err := repos.Licenses.Create(ctx, l); err != nil {
			return fmt.Errorf("failed to seed license %q: %w", l.Name, err)
		}
	}

	return nil
}

func containsName[T any](items []T, name string, key func(T) string) bool {
	for _, item := range items {
		if key(item) == name {
			return true
		}
	}
	return false
}
