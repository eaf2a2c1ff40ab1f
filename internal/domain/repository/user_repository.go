package repository

import (
	"time"

	"github.com/kraya/platform-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Create y Update escriben también la fila de perfil del Kind y la relación
// user_roles; para que sean atómicos deben ejecutarse vía TxRunner.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *entity.User) error
	UpdateLastLogin(id int64, at time.Time) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id int64) error
}
