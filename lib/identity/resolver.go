// Package identity maps the IAM user names this deployment provisions to the
// SSM parameter paths holding their optional contact email.
//
// The table is fixed configuration, not runtime state: adding a user role
// means adding one entry here, never touching handler control flow. Names
// absent from the table (service accounts, unrelated automation picked up by
// the same audit trail) are deliberately not an error - callers skip them.
package identity

import "provisioning/lib/constants"

var emailParameterPaths = map[string]string{
	"ec2-user": constants.EC2_USER_EMAIL,
	"s3-user":  constants.S3_USER_EMAIL,
}

// Resolve returns the SSM parameter path for a known user name. The second
// return value is false for names this deployment does not manage.
func Resolve(name string) (string, bool) {
	path, ok := emailParameterPaths[name]
	return path, ok
}
