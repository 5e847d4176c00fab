package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingLocationKey       = "location"
	LoggingURLKey            = "url"
	LoggingRedisKey          = "redis_key"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingCollectionNameKey = "collection_name"
	LoggingOperationKey      = "operation"

	LoggingWizardIDKey       = "wizard_id"
	LoggingAssessmentIDKey   = "assessment_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingQuestionIDKey     = "question_id"
	LoggingQuestionIndexKey  = "question_index"
	LoggingQuestionCountKey  = "question_count"
	LoggingPatientCountKey   = "patient_count"
	LoggingOptionIndexKey    = "option_index"
	LoggingPhaseKey          = "phase"
	LoggingPreviousPhaseKey  = "previous_phase"
	LoggingPendingAnswersKey = "pending_answers"
	LoggingOverallScoreKey   = "overall_score"
	LoggingFrameWidthKey     = "frame_width"
	LoggingFrameHeightKey    = "frame_height"
	LoggingPayloadSizeKey    = "payload_size"
	LoggingEyeKey            = "eye"
	LoggingSessionCountKey   = "session_count"
)
