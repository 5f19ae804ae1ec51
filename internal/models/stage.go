package models

import "strings"

// AuthorisationStage identifies how far a consent authorisation flow
// progressed. Stage events carry these tags.
type AuthorisationStage string

const (
	StageStarted             AuthorisationStage = "started"
	StageUserIdentified      AuthorisationStage = "userIdentified"
	StageUserAuthenticated   AuthorisationStage = "userAuthenticated"
	StageAccountSelected     AuthorisationStage = "accountSelected"
	StageConsentApproved     AuthorisationStage = "consentApproved"
	StageConsentRejected     AuthorisationStage = "consentRejected"
	StageTokenExchangeFailed AuthorisationStage = "tokenExchangeFailed"
	StageCompleted           AuthorisationStage = "completed"
	StageUnknown             AuthorisationStage = ""
)

// ParseAuthorisationStage maps a raw stage tag to its enum value.
func ParseAuthorisationStage(s string) AuthorisationStage {
	switch AuthorisationStage(s) {
	case StageStarted, StageUserIdentified, StageUserAuthenticated, StageAccountSelected,
		StageConsentApproved, StageConsentRejected, StageTokenExchangeFailed, StageCompleted:
		return AuthorisationStage(s)
	default:
		return StageUnknown
	}
}

// AbandonmentStage classifies where an abandoned consent flow stalled.
type AbandonmentStage string

const (
	AbandonedRejected            AbandonmentStage = "rejected"
	AbandonedPreIdentification   AbandonmentStage = "preIdentification"
	AbandonedPreAuthentication   AbandonmentStage = "preAuthentication"
	AbandonedPreAccountSelection AbandonmentStage = "preAccountSelection"
	AbandonedPreAuthorisation    AbandonmentStage = "preAuthorisation"
	AbandonedFailedTokenExchange AbandonmentStage = "failedTokenExchange"
)

// ConsentStatus is the lifecycle status carried on authorisation records.
type ConsentStatus string

const (
	ConsentAuthorised ConsentStatus = "Authorised"
	ConsentRevoked    ConsentStatus = "Revoked"
	ConsentExpired    ConsentStatus = "Expired"
	ConsentRejected   ConsentStatus = "Rejected"
)

// AuthFlowType distinguishes a brand-new consent from an amendment of an
// existing one.
type AuthFlowType string

const (
	FlowNew     AuthFlowType = "new"
	FlowAmended AuthFlowType = "amended"
)

// ConsentDurationType distinguishes ongoing consents from once-off ones.
type ConsentDurationType string

const (
	DurationOngoing ConsentDurationType = "ongoing"
	DurationOnceOff ConsentDurationType = "onceOff"
)

// IsIndividualProfile reports whether a raw customer-profile tag describes an
// individual consumer. Profile tags are free-form upstream, so the check is a
// substring match, with an explicit guard so "non-individual" never counts as
// individual.
func IsIndividualProfile(profile string) bool {
	p := strings.ToLower(profile)
	return strings.Contains(p, "individual") && !strings.Contains(p, "non-individual")
}
