// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aferraro/badge-scanner/db/ent/schema"
	"github.com/aferraro/badge-scanner/gen/ent/contact"
	"github.com/aferraro/badge-scanner/gen/ent/group"
	"github.com/aferraro/badge-scanner/gen/ent/scanjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[1].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = func() func(string) error {
		validators := contactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescCompany is the schema descriptor for company field.
	contactDescCompany := contactFields[2].Descriptor()
	// contact.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	contact.CompanyValidator = contactDescCompany.Validators[0].(func(string) error)
	// contactDescTitle is the schema descriptor for title field.
	contactDescTitle := contactFields[3].Descriptor()
	// contact.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contact.TitleValidator = contactDescTitle.Validators[0].(func(string) error)
	// contactDescPhone is the schema descriptor for phone field.
	contactDescPhone := contactFields[5].Descriptor()
	// contact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	contact.PhoneValidator = contactDescPhone.Validators[0].(func(string) error)
	// contactDescSource is the schema descriptor for source field.
	contactDescSource := contactFields[8].Descriptor()
	// contact.DefaultSource holds the default value on creation for the source field.
	contact.DefaultSource = contactDescSource.Default.(string)
	// contact.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	contact.SourceValidator = contactDescSource.Validators[0].(func(string) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[11].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[12].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[3].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupFields[4].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupDescID is the schema descriptor for id field.
	groupDescID := groupFields[0].Descriptor()
	// group.DefaultID holds the default value on creation for the id field.
	group.DefaultID = groupDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[2].Descriptor()
	// scanjob.DefaultStatus holds the default value on creation for the status field.
	scanjob.DefaultStatus = scanjobDescStatus.Default.(string)
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[3].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescNeedsReview is the schema descriptor for needs_review field.
	scanjobDescNeedsReview := scanjobFields[10].Descriptor()
	// scanjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	scanjob.DefaultNeedsReview = scanjobDescNeedsReview.Default.(bool)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
