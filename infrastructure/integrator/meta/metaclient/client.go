package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
)

// baseClient concentra o plumbing HTTP compartilhado pelos canais.
// Cada canal carrega seu próprio token de acesso: o token da conta IG
// e o token da página FB são credenciais independentes.
type baseClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func newBaseClient(baseURL, accessToken string) baseClient {
	return baseClient{
		httpClient:  &http.Client{},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// postForm faz um POST form-encoded para a Graph API e decodifica a resposta em out
func (c *baseClient) postForm(path string, params url.Values, out interface{}) error {
	params.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

// getJSON faz um GET para a Graph API e decodifica a resposta em out
func (c *baseClient) getJSON(path string, params url.Values, out interface{}) error {
	params.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	return c.do(req, out)
}

func (c *baseClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := handleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// handleResponse lê o corpo e converte respostas de erro da Graph API em
// RequestError, preservando o payload remoto para diagnóstico
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	errResp := &metadomain.ErrorResponse{}
	if err := json.Unmarshal(body, errResp); err != nil {
		// Corpo não é o JSON de erro padrão do Meta; preservar o corpo cru
		errResp = nil
	}

	reqErr := metadomain.NewRequestError(resp.StatusCode, errResp, body)

	fields := logrus.Fields{
		"status_code": resp.StatusCode,
	}
	if errResp != nil {
		fields["error_code"] = errResp.Error.Code
		fields["error_message"] = errResp.Error.Message
		fields["fbtrace_id"] = errResp.Error.FBTraceID
		if errResp.IsTokenExpired() {
			logrus.WithFields(fields).Error("Token de acesso do Meta expirado")
		}
	}
	logrus.WithFields(fields).Error("Erro retornado pela API do Meta")

	return nil, reqErr
}

// idResponse é a resposta mínima de criação de recursos da Graph API
type idResponse struct {
	ID string `json:"id"`
}
