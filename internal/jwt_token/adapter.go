package jwttoken

import (
	authmw "lawpoint/internal/platform/middleware"
)

// ServiceAdapter narrows Service to the middleware's verifier interface so
// the middleware package does not depend on jwt claim types.
type ServiceAdapter struct {
	service *Service
}

func NewServiceAdapter(service *Service) *ServiceAdapter {
	return &ServiceAdapter{service: service}
}

func (a *ServiceAdapter) Verify(tokenString string) (*authmw.TokenClaims, error) {
	claims, err := a.service.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
