package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de serviço emitido pelo login
type Claims struct {
	ServiceName string `json:"service_name"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	APIKey string `json:"api_key"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
