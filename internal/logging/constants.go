package logging

// Field names shared by every log call site.
const (
	FieldKey       = "key"
	FieldCategory  = "category"
	FieldRecordID  = "record_id"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldPolicy    = "policy"
	FieldDirectory = "directory"
	FieldFile      = "file_path"
	FieldQuery     = "query"
	FieldBankCode  = "bank_code"
)
