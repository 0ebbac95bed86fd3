package model

import "time"

// Materia is a subject/course record identified by a caller-supplied id.
// The same struct is persisted as a Mongo document and as a Postgres row.
type Materia struct {
	ID          string    `bson:"_id"         gorm:"primaryKey"`
	Nombre      string    `bson:"nombre"      gorm:"not null"`
	Categoria   string    `bson:"categoria"   gorm:"not null;index"`
	Descripcion string    `bson:"descripcion" gorm:"not null;default:''"`
	CreatedAt   time.Time `bson:"createdAt"   gorm:"not null;index"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Materia) TableName() string { return "materias" }
