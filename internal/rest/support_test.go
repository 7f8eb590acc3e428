package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"byteBrosStore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSupportService struct {
	protocol string
	err      error
	got      *domain.SupportInteraction
}

func (s *stubSupportService) CreateInteraction(_ context.Context, interaction *domain.SupportInteraction) (string, error) {
	s.got = interaction
	if s.err != nil {
		return "", s.err
	}
	return s.protocol, nil
}

const validSupportBody = `{
	"nome": "Maria",
	"email": "maria@x.com",
	"telefone": "11999990000",
	"mensagem": "Preciso de um orçamento",
	"tipo_interacao": "orcamento",
	"servico_nome": "Consultoria"
}`

func TestCreateInteractionHandlerSuccess(t *testing.T) {
	svc := &stubSupportService{protocol: "abc-123"}
	h := NewSupportHandler(svc)

	c, rec := postJSON(t, "/api/suporte", validSupportBody)
	require.NoError(t, h.CreateInteraction(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mensagem recebida com sucesso!")
	assert.Contains(t, rec.Body.String(), `"protocolo":"abc-123"`)
	require.NotNil(t, svc.got)
	assert.Equal(t, "orcamento", svc.got.InteractionType)
}

func TestCreateInteractionHandlerMissingFields(t *testing.T) {
	svc := &stubSupportService{protocol: "abc-123"}
	h := NewSupportHandler(svc)

	c, rec := postJSON(t, "/api/suporte", `{"nome": "Maria"}`)
	require.NoError(t, h.CreateInteraction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestCreateInteractionHandlerStoreFailure(t *testing.T) {
	svc := &stubSupportService{err: errors.New("connection refused")}
	h := NewSupportHandler(svc)

	c, rec := postJSON(t, "/api/suporte", validSupportBody)
	require.NoError(t, h.CreateInteraction(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro ao salvar mensagem.")
}
