package models

// UserCreationDetail is the payload carried in the Detail field of the
// CloudTrail user-creation event that triggers the notification Lambda.
// The event subsystem owns the envelope; we only decode the record list.
type UserCreationDetail struct {
	Records []UserRecord `json:"records"`
}

// UserRecord identifies one IAM user created by the provisioning stack
type UserRecord struct {
	Name string `json:"name"` // IAM user name, e.g. "ec2-user"
}

// SharedSecret is the decoded Secrets Manager payload holding the temporary
// password shared by all users provisioned in one deployment
type SharedSecret struct {
	Password string `json:"password"`
}

// UserReport is the per-user notification line emitted to the operational log.
// Constructed and logged once per recognized user, never persisted.
type UserReport struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"` // resolved contact email, or the unavailable marker
	Password string `json:"password"`
}
