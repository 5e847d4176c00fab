package exceptions

import (
	"fmt"
	"wellness-wizard/internal/pkg/constvars"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidationFailed, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrNoPatientSelected = func() *CustomError {
		return BuildNewCustomError(nil, KindStartRejected, constvars.StatusBadRequest, constvars.ErrClientSelectPatient, constvars.ErrDevNoPatientSelected)
	}
	ErrPatientRequired = func() *CustomError {
		return BuildNewCustomError(nil, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientSelectPatient, constvars.ErrDevNoPatientSelected)
	}
	ErrOptionOutOfRange = func(index, optionCount int) *CustomError {
		return BuildNewCustomError(nil, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientSelectAnswer, fmt.Sprintf(constvars.ErrDevOptionOutOfRange, index, optionCount))
	}
	ErrNoPreviousQuestion = func() *CustomError {
		return BuildNewCustomError(nil, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientWrongStep, constvars.ErrDevNoPreviousQuestion)
	}
	ErrBothEyeImagesRequired = func() *CustomError {
		return BuildNewCustomError(nil, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientBothEyeImagesRequired, constvars.ErrDevInvalidInput)
	}
	ErrQuestionsEmpty = func() *CustomError {
		return BuildNewCustomError(nil, KindValidationFailed, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevQuestionsEmpty)
	}
	ErrQuestionInvalid = func(err error, questionID int) *CustomError {
		return BuildNewCustomError(err, KindValidationFailed, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevQuestionInvalid, questionID))
	}

	// State machine
	ErrInvalidPhase = func(operation, phase string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidState, constvars.StatusConflict, constvars.ErrClientWrongStep, fmt.Sprintf(constvars.ErrDevInvalidPhase, operation, phase))
	}
	ErrOperationInFlight = func(operation, inFlight string) *CustomError {
		return BuildNewCustomError(nil, KindOperationInFlight, constvars.StatusConflict, constvars.ErrClientOperationInFlight, fmt.Sprintf(constvars.ErrDevOperationInFlight, operation, inFlight))
	}
	ErrSessionAbandoned = func(operation string) *CustomError {
		return BuildNewCustomError(nil, KindSessionAbandoned, constvars.StatusGone, constvars.ErrClientSessionAbandoned, fmt.Sprintf(constvars.ErrDevSessionAbandoned, operation))
	}
	ErrWizardNotFound = func(wizardID string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.StatusNotFound, constvars.ErrClientWizardNotFound, fmt.Sprintf(constvars.ErrDevWizardNotFound, wizardID))
	}
	ErrRegistryFull = func(sessionCount int) *CustomError {
		return BuildNewCustomError(nil, KindCapacityExhausted, constvars.StatusTooManyRequests, constvars.ErrClientTooManySessions, fmt.Sprintf(constvars.ErrDevRegistryFull, sessionCount))
	}
	ErrStartRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStartRejected, constvars.StatusBadGateway, constvars.ErrClientStartRejected, constvars.ErrDevStartRejected)
	}
	ErrCompletionRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCompletionRejected, constvars.StatusBadGateway, constvars.ErrClientCompletionRejected, constvars.ErrDevCompletionRejected)
	}

	// Capture device
	ErrDeviceUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindDeviceUnavailable, constvars.StatusServiceUnavailable, constvars.ErrClientCameraUnavailable, constvars.ErrDevDeviceUnavailable)
	}
	ErrDeviceNotOpen = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidState, constvars.StatusConflict, constvars.ErrClientCameraNotReady, constvars.ErrDevDeviceNotOpen)
	}
	ErrDeviceAlreadyOpen = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidState, constvars.StatusConflict, constvars.ErrClientCameraNotReady, constvars.ErrDevDeviceAlreadyOpen)
	}
	ErrEncodeFrame = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEncodeFrame)
	}
	ErrDecodeImage = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientBothEyeImagesRequired, constvars.ErrDevDecodeImage)
	}

	// Auth
	ErrTokenMissing = func() *CustomError {
		return BuildNewCustomError(nil, KindAuthExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuthExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenExpired)
	}
	ErrTokenMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuthExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMalformed)
	}
	ErrPortalUnauthorized = func(path string) *CustomError {
		return BuildNewCustomError(nil, KindAuthExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevPortalUnauthorized, path))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidationFailed, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevReadBody)
	}
	ErrPortalUnexpectedStatus = func(err error, statusCode int, path string) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevPortalUnexpectedStatus, statusCode, path))
	}
	ErrPortalDecodeResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevPortalDecodeResponse, path))
	}
	ErrPortalRejected = func(err error, statusCode int, path string) *CustomError {
		return BuildNewCustomError(err, KindValidationFailed, constvars.StatusUnprocessableEntity, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevPortalRejected, path, statusCode))
	}
	ErrPortalUnknownSchema = func(path string) *CustomError {
		return BuildNewCustomError(nil, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevPortalUnknownSchema, path))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrIridologyAnalysisFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientAnalysisFailed, constvars.ErrDevIridologyAnalysisFailed)
	}
	ErrReportGenerationFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevReportGenerationFailed)
	}
	ErrIridologyReportUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindBackendUnavailable, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevIridologyReportUnavailable)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, KindAuthExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoDBInsertDocument, collection))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
