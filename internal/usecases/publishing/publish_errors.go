package publishing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/catalog-social-api/internal/domain"
)

// Erros específicos para o contexto de publicação
var (
	// Erros de pré-condição
	ErrPostNotFound      = errors.New("post não encontrado")
	ErrInvalidPostStatus = errors.New("post não está em estado DRAFT")
	ErrMissingImage      = errors.New("post não possui imagem para publicação")

	// Erros de processamento de mídia
	ErrMediaProcessing = errors.New("container de mídia entrou em status ERROR")
	ErrMediaTimeout    = errors.New("container de mídia não ficou pronto dentro do limite de tentativas")

	// Erro agregado: nenhum canal publicou com sucesso; o post permanece
	// em QUEUED para nova tentativa
	ErrNoChannelPublished = errors.New("nenhum canal publicou o post com sucesso")
)

// PublishError é um erro com contexto adicional de publicação
type PublishError struct {
	Err     error          // Erro base
	PostID  string         // ID do post envolvido
	Channel domain.Channel // Canal envolvido (quando aplicável)
	Details string         // Detalhes adicionais
}

// Error implementa a interface error
func (e *PublishError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError cria um novo PublishError
func NewPublishError(err error, postID string, details string) *PublishError {
	return &PublishError{
		Err:     err,
		PostID:  postID,
		Details: details,
	}
}

// IsPreconditionError verifica se o erro é de pré-condição da publicação
// (nenhuma chamada externa chegou a ser feita)
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrInvalidPostStatus)
}
