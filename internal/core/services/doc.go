// Package services implements the driving ports on top of the driven ones:
// feed pagers bound to GitHub capability interfaces, and the auth service
// that runs the code exchange and owns the stored session.
package services
