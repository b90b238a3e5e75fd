package constants

const (
	// SSM parameter paths holding the optional contact email per provisioned user role
	EC2_USER_EMAIL = "/user/ec2/email"
	S3_USER_EMAIL  = "/user/s3/email"

	// Secrets Manager id of the shared temporary password issued to every new user
	SHARED_PASSWORD_SECRET_ID = "provisioning/shared-temp-password"

	// Marker used in a report when no contact email could be resolved
	EMAIL_UNAVAILABLE = "unavailable"
)
