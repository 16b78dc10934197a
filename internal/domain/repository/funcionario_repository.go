package repository

import "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"

// FuncionarioRepository define o port de persistência para Funcionario.
type FuncionarioRepository interface {
	Create(f *entity.Funcionario) error
	GetByMatricula(matricula string) (*entity.Funcionario, error)
	Update(f *entity.Funcionario) error
	Delete(matricula string) error
	List(limit, offset int) ([]*entity.Funcionario, error)
	// ListByStatus devolve os funcionários cujo status está no conjunto dado
	// (usado pelo processamento com entity.StatusEmFolha).
	ListByStatus(status []string) ([]*entity.Funcionario, error)
	Count() (int, error)
	// DeleteAllExcept apaga todos os funcionários exceto as matrículas
	// protegidas; devolve quantos foram removidos.
	DeleteAllExcept(matriculasProtegidas []string) (int64, error)
}
