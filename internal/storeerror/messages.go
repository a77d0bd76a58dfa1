package storeerror

import "errors"

// ReasonRequired is the ValidationError reason for a blank field.
const ReasonRequired = "required"

// Notice is the blocking acknowledgement shown to the user for a failure.
type Notice struct {
	Title string
	Body  string
}

const (
	titleError   = "Hata"
	titleWarning = "Uyarı"
)

// UserMessage maps err to the notice shown to the user. Errors outside the
// taxonomy get the generic failure notice.
func UserMessage(err error) Notice {
	var (
		validation *ValidationError
		duplicate  *DuplicateError
		empty      *EmptyNameError
		reserved   *ReservedCategoryError
		minimum    *MinimumCategoryError
		notFound   *NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		if validation.Reason == ReasonRequired {
			return Notice{titleError, "Tüm alanları doldurunuz."}
		}
		if validation.Field == "iban" {
			return Notice{titleError, "Geçersiz IBAN formatı. TR ile başlayan 26 karakterli bir IBAN giriniz."}
		}
		return Notice{titleError, "Geçersiz değer: " + validation.Field}
	case errors.As(err, &duplicate):
		return Notice{titleError, "Bu kategori zaten mevcut."}
	case errors.As(err, &empty):
		return Notice{titleError, "Kategori adı boş olamaz."}
	case errors.As(err, &reserved):
		if reserved.Operation == "remove" {
			return Notice{titleWarning, "Bu kategori silinemez."}
		}
		return Notice{titleWarning, "Bu kategori düzenlenemez."}
	case errors.As(err, &minimum):
		return Notice{titleError, "En az bir kategori bulunmalıdır."}
	case errors.As(err, &notFound):
		return Notice{titleError, "Kayıt bulunamadı."}
	case errors.Is(err, ErrNothingToExport):
		return Notice{titleWarning, "Kopyalanacak hesap bulunamadı"}
	case errors.Is(err, ErrNoPendingRequest):
		return Notice{titleWarning, "Onay bekleyen bir silme işlemi yok."}
	default:
		return Notice{titleError, "İşlem sırasında bir hata oluştu"}
	}
}
