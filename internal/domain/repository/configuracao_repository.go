package repository

import "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"

// ConfiguracaoRepository define o port do registro singleton de configuração
// global. Get devolve (nil, nil) quando o registro ainda não existe; ausência
// é fatal para o processamento, mas não é erro de leitura.
type ConfiguracaoRepository interface {
	Get() (*entity.Configuracao, error)
	Save(c *entity.Configuracao) error
}
