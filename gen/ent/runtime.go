// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/db/ent/schema"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fundingrequestFields := schema.FundingRequest{}.Fields()
	_ = fundingrequestFields
	// fundingrequestDescOrganizationName is the schema descriptor for organization_name field.
	fundingrequestDescOrganizationName := fundingrequestFields[1].Descriptor()
	// fundingrequest.OrganizationNameValidator is a validator for the "organization_name" field. It is called by the builders before save.
	fundingrequest.OrganizationNameValidator = fundingrequestDescOrganizationName.Validators[0].(func(string) error)
	// fundingrequestDescProgramElement is the schema descriptor for program_element field.
	fundingrequestDescProgramElement := fundingrequestFields[4].Descriptor()
	// fundingrequest.DefaultProgramElement holds the default value on creation for the program_element field.
	fundingrequest.DefaultProgramElement = fundingrequestDescProgramElement.Default.(string)
	// fundingrequestDescDomain is the schema descriptor for domain field.
	fundingrequestDescDomain := fundingrequestFields[8].Descriptor()
	// fundingrequest.DefaultDomain holds the default value on creation for the domain field.
	fundingrequest.DefaultDomain = fundingrequestDescDomain.Default.(string)
	// fundingrequestDescTier is the schema descriptor for tier field.
	fundingrequestDescTier := fundingrequestFields[9].Descriptor()
	// fundingrequest.DefaultTier holds the default value on creation for the tier field.
	fundingrequest.DefaultTier = fundingrequestDescTier.Default.(string)
	// fundingrequestDescIsDrl is the schema descriptor for is_drl field.
	fundingrequestDescIsDrl := fundingrequestFields[12].Descriptor()
	// fundingrequest.DefaultIsDrl holds the default value on creation for the is_drl field.
	fundingrequest.DefaultIsDrl = fundingrequestDescIsDrl.Default.(bool)
	// fundingrequestDescVoteStatus is the schema descriptor for vote_status field.
	fundingrequestDescVoteStatus := fundingrequestFields[14].Descriptor()
	// fundingrequest.DefaultVoteStatus holds the default value on creation for the vote_status field.
	fundingrequest.DefaultVoteStatus = fundingrequestDescVoteStatus.Default.(string)
	// fundingrequestDescIsStaffRecommended is the schema descriptor for is_staff_recommended field.
	fundingrequestDescIsStaffRecommended := fundingrequestFields[15].Descriptor()
	// fundingrequest.DefaultIsStaffRecommended holds the default value on creation for the is_staff_recommended field.
	fundingrequest.DefaultIsStaffRecommended = fundingrequestDescIsStaffRecommended.Default.(bool)
	// fundingrequestDescHasValidOffset is the schema descriptor for has_valid_offset field.
	fundingrequestDescHasValidOffset := fundingrequestFields[17].Descriptor()
	// fundingrequest.DefaultHasValidOffset holds the default value on creation for the has_valid_offset field.
	fundingrequest.DefaultHasValidOffset = fundingrequestDescHasValidOffset.Default.(bool)
	// fundingrequestDescIsHascJurisdiction is the schema descriptor for is_hasc_jurisdiction field.
	fundingrequestDescIsHascJurisdiction := fundingrequestFields[18].Descriptor()
	// fundingrequest.DefaultIsHascJurisdiction holds the default value on creation for the is_hasc_jurisdiction field.
	fundingrequest.DefaultIsHascJurisdiction = fundingrequestDescIsHascJurisdiction.Default.(bool)
	// fundingrequestDescCreatedAt is the schema descriptor for created_at field.
	fundingrequestDescCreatedAt := fundingrequestFields[19].Descriptor()
	// fundingrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	fundingrequest.DefaultCreatedAt = fundingrequestDescCreatedAt.Default.(func() time.Time)
	// fundingrequestDescUpdatedAt is the schema descriptor for updated_at field.
	fundingrequestDescUpdatedAt := fundingrequestFields[20].Descriptor()
	// fundingrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fundingrequest.DefaultUpdatedAt = fundingrequestDescUpdatedAt.Default.(func() time.Time)
	// fundingrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fundingrequest.UpdateDefaultUpdatedAt = fundingrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fundingrequestDescID is the schema descriptor for id field.
	fundingrequestDescID := fundingrequestFields[0].Descriptor()
	// fundingrequest.DefaultID holds the default value on creation for the id field.
	fundingrequest.DefaultID = fundingrequestDescID.Default.(func() uuid.UUID)
}
