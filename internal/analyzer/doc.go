// Package analyzer defines the report model and the collaborator interfaces
// shared by the discovery, acquisition, classification and synthesis stages.
package analyzer
