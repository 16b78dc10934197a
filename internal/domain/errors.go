package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrNaoAutorizado       = errors.New("não autorizado")
	ErrAcessoNegado        = errors.New("acesso negado")
	ErrConfiguracaoAusente = errors.New("configuração global ausente")

	// Erros da máquina de estados do período.
	ErrTransicaoInvalida       = errors.New("transição de status do período não permitida")
	ErrPeriodoBloqueado        = errors.New("período aprovado ou selado não admite alteração destrutiva")
	ErrPeriodoSelado           = errors.New("período selado é imutável")
	ErrReprocessoNaoConfirmado = errors.New("reprocessar período aprovado exige confirmação explícita")
)
