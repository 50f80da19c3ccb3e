// Package timezone separates the two kinds of time the service handles.
//
// Instants (created_at, modified_at, last_login) are taken with Now and
// rendered with Format in the zone named by APP_TIMEZONE, falling back to UTC
// when the variable is empty or not an IANA name.
//
// Stay dates (check-in, check-out) carry no time of day. ParseDate and Date
// pin them to midnight UTC so a half-open [check-in, check-out) range compares
// by calendar day regardless of the configured zone; FormatDate renders them
// back as YYYY-MM-DD.
package timezone
