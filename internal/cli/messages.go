package cli

import (
	"errors"

	"cinetrack/internal/common"
)

// User-facing messages stay in Portuguese, the locale the app ships in.
// Services return sentinel errors; this is the single translation point.
const (
	msgNotAuthenticated   = "Usuário não autenticado"
	msgRestrictedAction   = "Ação restrita: você precisa estar logado para gerenciar favoritos."
	msgInvalidCredentials = "Credenciais inválidas"
	msgDuplicateEmail     = "Email já cadastrado"
	msgIncompleteData     = "Dados incompletos"
	msgNotInFavorites     = "Filme não está nos favoritos"
	msgFetchFailure       = "Erro ao carregar dados. Tente novamente."
	msgGenericFailure     = "Não foi possível concluir a operação"
)

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return msgNotAuthenticated
	case errors.Is(err, common.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, common.ErrDuplicateEmail):
		return msgDuplicateEmail
	case errors.Is(err, common.ErrValidation):
		return msgIncompleteData
	case errors.Is(err, common.ErrNotFound):
		return msgNotInFavorites
	default:
		return msgGenericFailure
	}
}
