package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"gt":       "must be greater than %s",
	"oneof":    "must be one of [%s]",
	"base64":   "must be a valid base64 string",
	"uuid":     "must be a valid UUID",
	"eqfield":  "must match %s",
	"len":      "must have %s items",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"gte":     true,
	"lte":     true,
	"gt":      true,
	"oneof":   true,
	"eqfield": true,
	"len":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientCameraUnavailable             = "could not access the camera, please allow camera permissions or upload the eye images instead"
	ErrClientCameraNotReady                = "the camera is not ready"
	ErrClientSelectPatient                 = "please select a patient"
	ErrClientSelectAnswer                  = "please select an answer"
	ErrClientBothEyeImagesRequired         = "please capture or upload both eye images"
	ErrClientBackendUnavailable            = "the clinic portal is not reachable right now, please try again"
	ErrClientStartRejected                 = "the assessment could not be started"
	ErrClientCompletionRejected            = "the assessment could not be completed, please try again"
	ErrClientOperationInFlight             = "please wait for the current step to finish"
	ErrClientSessionAbandoned              = "this assessment session is no longer active"
	ErrClientWizardNotFound                = "assessment session not found"
	ErrClientWrongStep                     = "this action is not available at the current step"
	ErrClientAnalysisFailed                = "iris analysis failed, please try again or skip this step"
	ErrClientTooManySessions               = "too many assessments are open, please close one and try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadBody                   = "failed to read response body"
	ErrDevPortalUnexpectedStatus     = "portal responded with status %d on %s"
	ErrDevPortalUnauthorized         = "portal rejected bearer token on %s"
	ErrDevPortalDecodeResponse       = "failed to decode portal response from %s"
	ErrDevPortalRejected             = "portal rejected %s with status %d"
	ErrDevPortalUnknownSchema        = "portal response from %s matched no known schema"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthTokenExpired           = "token expired"
	ErrDevAuthTokenMalformed         = "token malformed"
	ErrDevDeviceUnavailable          = "capture device unavailable"
	ErrDevDeviceNotOpen              = "capture called while device is closed"
	ErrDevDeviceAlreadyOpen          = "capture device already open"
	ErrDevEncodeFrame                = "failed to encode frame"
	ErrDevDecodeImage                = "failed to decode image"
	ErrDevInvalidPhase               = "operation %s not valid in phase %s"
	ErrDevNoPatientSelected          = "no patient selected"
	ErrDevOptionOutOfRange           = "option index %d out of range [0,%d)"
	ErrDevNoPreviousQuestion         = "no previous question"
	ErrDevOperationInFlight          = "operation %s rejected, %s is in flight"
	ErrDevSessionAbandoned           = "response for %s discarded, session abandoned"
	ErrDevWizardNotFound             = "wizard session %s not found"
	ErrDevRegistryFull               = "session registry full at %d sessions"
	ErrDevStartRejected              = "backend rejected assessment start"
	ErrDevCompletionRejected         = "backend rejected assessment completion"
	ErrDevQuestionsEmpty             = "question list is empty"
	ErrDevQuestionInvalid            = "question %d is invalid"
	ErrDevIridologyAnalysisFailed    = "iridology analysis reported failure"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisGetNoData             = "no data found in redis for key %s"
	ErrDevRedisSetData               = "failed to set data into redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevMongoDBInsertDocument      = "failed to insert document into collection %s"
	ErrDevReportGenerationFailed     = "report generation reported failure"
	ErrDevIridologyReportUnavailable = "iridology report reported failure"
)

const ResponseUnknown = "unknown"
