package internal

// WorkOrderCounter holds the last allocated sequence per condominium and
// year. Rows are only ever touched through the atomic upsert in the
// repository.
type WorkOrderCounter struct {
	CondominiumID string `json:"condominio_id" gorm:"column:condominio_id;primaryKey"`
	Year          int    `json:"ano" gorm:"column:ano;primaryKey"`
	LastSeq       int    `json:"ultimo_seq" gorm:"column:ultimo_seq;not null"`
}

func (WorkOrderCounter) TableName() string {
	return "os_contadores"
}
