package domain

import "time"

// Audit actions recorded by the services.
const (
	AuditSignUp         = "signup"
	AuditSignIn         = "signin"
	AuditSignInFailed   = "signin_failed"
	AuditArticleCreated = "article_created"
	AuditArticleUpdated = "article_updated"
	AuditArticleDeleted = "article_deleted"
)

// AuditRecord is one entry in the activity trail. ActorID is empty for
// anonymous actions (a failed signin has no verified actor).
type AuditRecord struct {
	ID        string    `bson:"record_id"`
	ActorID   string    `bson:"actor_id,omitempty"`
	Actor     string    `bson:"actor,omitempty"`
	Action    string    `bson:"action"`
	Subject   string    `bson:"subject,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}
