package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API. O cliente usa o código para
// decidir o tratamento; a mensagem é apenas descritiva.
const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials = "AUTH_001" // Chave de serviço incorreta
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do fluxo de publicação e feedback (PUB_*)
	ErrPostNotFound       = "PUB_001" // Post não encontrado
	ErrInvalidPostStatus  = "PUB_002" // Post fora do estado publicável
	ErrNoChannelPublished = "PUB_003" // Nenhum canal publicou com sucesso
	ErrFeedbackNotFound   = "PUB_004" // Post ainda sem feedback coletado
	ErrSyncAlreadyRunning = "PUB_005" // Ciclo de coleta já em andamento

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo (Graph API)
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrPostNotFound:        http.StatusNotFound,
	ErrInvalidPostStatus:   http.StatusConflict,
	ErrNoChannelPublished:  http.StatusBadGateway,
	ErrFeedbackNotFound:    http.StatusNotFound,
	ErrSyncAlreadyRunning:  http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
