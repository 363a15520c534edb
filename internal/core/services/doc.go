// Package services contains the application services that implement the
// driving ports. Services orchestrate domain logic over the driven
// ports and hold no transport or storage specifics of their own.
package services
