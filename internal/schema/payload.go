package schema

type TableInfoRequest struct {
	Table     string
	Column    string
	UseProdDB bool
	User      string
	Password  string
}

// ColumnInfo is a re-keyed metadata row. Field names and the Si/No token
// match the consumers of the original service.
type ColumnInfo struct {
	Name     string `json:"Nombre_Columna"`
	Type     string `json:"Tipo"`
	Length   any    `json:"Longitud"`
	Nullable string `json:"Nulo"`
}
