package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidURL          failure.ErrorCode = "InvalidURL"

	// Коды для пайплайна find-and-buy
	MissingQuery         failure.ErrorCode = "MissingQuery"         // Нет строки query в запросе
	NoCandidates         failure.ErrorCode = "NoCandidates"         // Модель не вернула ни одного оффера
	NoPricedCandidates   failure.ErrorCode = "NoPricedCandidates"   // Ни один оффер не прошёл валидацию цены
	AutomationCallFailed failure.ErrorCode = "AutomationCallFailed" // Браузерный сервис ответил не-2xx
)
