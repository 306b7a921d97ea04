package urls

// DefaultRecordServer is where the editor posts saved fields unless
// configured otherwise. It matches the record server's default port.
const DefaultRecordServer = "http://localhost:4000"

// DefaultServerPort is the record server's default listen port
const DefaultServerPort = 4000

// FieldPath is the record server's single-slot resource
const FieldPath = "/api/field"
