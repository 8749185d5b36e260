package api

import (
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var cycleModes = map[string]bool{"nearest": true, "next": true, "prev": true}

var compassDirections = map[string]bool{
	"N": true, "NE": true, "E": true, "SE": true,
	"S": true, "SW": true, "W": true, "NW": true,
}

func (p LookPayload) Validate() error {
	if p.Radius < 0 {
		return errors.New("radius cannot be negative")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if !cycleModes[strings.ToLower(strings.TrimSpace(p.Mode))] {
		return errors.New("mode must be one of nearest, next, prev")
	}
	return nil
}

func (p ValidatePayload) Validate() error {
	if p.Range < 0 {
		return errors.New("range cannot be negative")
	}
	return nil
}

func (p ZapPayload) Validate() error {
	if p.WandID == "" {
		return errors.New("wandId is required")
	}
	if p.Direction != "" && p.Target != nil {
		return errors.New("direction and target are mutually exclusive")
	}
	if p.Direction != "" && !compassDirections[strings.ToUpper(strings.TrimSpace(p.Direction))] {
		return errors.New("direction must be a compass point")
	}
	if p.Range < 0 {
		return errors.New("range cannot be negative")
	}
	return nil
}
