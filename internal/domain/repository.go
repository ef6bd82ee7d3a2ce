package domain

// CarSource loads canonical records from a storage backend.
type CarSource interface {
	LoadAll() ([]CarRecord, error)
}

// CarSink persists canonical records to a storage backend.
type CarSink interface {
	Write(cars []CarRecord) error
	Close() error
}

// RawSource reads untyped rows from an external table.
type RawSource interface {
	Read(path string) ([]RawRecord, error)
}
