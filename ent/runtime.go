// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/grant"
	"tracker-studio-api/ent/group"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/observationlink"
	"tracker-studio-api/ent/reminder"
	"tracker-studio-api/ent/schema"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/templatesharelink"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/ent/user"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contexteventFields := schema.ContextEvent{}.Fields()
	_ = contexteventFields
	// contexteventDescLabel is the schema descriptor for label field.
	contexteventDescLabel := contexteventFields[2].Descriptor()
	// contextevent.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	contextevent.LabelValidator = func() func(string) error {
		validators := contexteventDescLabel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(label string) error {
			for _, fn := range fns {
				if err := fn(label); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contexteventDescKind is the schema descriptor for kind field.
	contexteventDescKind := contexteventFields[3].Descriptor()
	// contextevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	contextevent.KindValidator = contexteventDescKind.Validators[0].(func(string) error)
	// contexteventDescStartDate is the schema descriptor for start_date field.
	contexteventDescStartDate := contexteventFields[4].Descriptor()
	// contextevent.StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	contextevent.StartDateValidator = func() func(string) error {
		validators := contexteventDescStartDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_date string) error {
			for _, fn := range fns {
				if err := fn(start_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contexteventDescEndDate is the schema descriptor for end_date field.
	contexteventDescEndDate := contexteventFields[5].Descriptor()
	// contextevent.EndDateValidator is a validator for the "end_date" field. It is called by the builders before save.
	contextevent.EndDateValidator = contexteventDescEndDate.Validators[0].(func(string) error)
	// contexteventDescCreatedAt is the schema descriptor for created_at field.
	contexteventDescCreatedAt := contexteventFields[6].Descriptor()
	// contextevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextevent.DefaultCreatedAt = contexteventDescCreatedAt.Default.(func() time.Time)
	// contexteventDescID is the schema descriptor for id field.
	contexteventDescID := contexteventFields[0].Descriptor()
	// contextevent.DefaultID holds the default value on creation for the id field.
	contextevent.DefaultID = contexteventDescID.Default.(func() uuid.UUID)
	grantFields := schema.Grant{}.Fields()
	_ = grantFields
	// grantDescCreatedAt is the schema descriptor for created_at field.
	grantDescCreatedAt := grantFields[8].Descriptor()
	// grant.DefaultCreatedAt holds the default value on creation for the created_at field.
	grant.DefaultCreatedAt = grantDescCreatedAt.Default.(func() time.Time)
	// grantDescID is the schema descriptor for id field.
	grantDescID := grantFields[0].Descriptor()
	// grant.DefaultID holds the default value on creation for the id field.
	grant.DefaultID = grantDescID.Default.(func() uuid.UUID)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = groupDescName.Validators[0].(func(string) error)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[2].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescID is the schema descriptor for id field.
	groupDescID := groupFields[0].Descriptor()
	// group.DefaultID holds the default value on creation for the id field.
	group.DefaultID = groupDescID.Default.(func() uuid.UUID)
	interpretationFields := schema.Interpretation{}.Fields()
	_ = interpretationFields
	// interpretationDescStartDate is the schema descriptor for start_date field.
	interpretationDescStartDate := interpretationFields[2].Descriptor()
	// interpretation.StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	interpretation.StartDateValidator = func() func(string) error {
		validators := interpretationDescStartDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_date string) error {
			for _, fn := range fns {
				if err := fn(start_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// interpretationDescEndDate is the schema descriptor for end_date field.
	interpretationDescEndDate := interpretationFields[3].Descriptor()
	// interpretation.EndDateValidator is a validator for the "end_date" field. It is called by the builders before save.
	interpretation.EndDateValidator = interpretationDescEndDate.Validators[0].(func(string) error)
	// interpretationDescBody is the schema descriptor for body field.
	interpretationDescBody := interpretationFields[4].Descriptor()
	// interpretation.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	interpretation.BodyValidator = func() func(string) error {
		validators := interpretationDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// interpretationDescCreatedAt is the schema descriptor for created_at field.
	interpretationDescCreatedAt := interpretationFields[5].Descriptor()
	// interpretation.DefaultCreatedAt holds the default value on creation for the created_at field.
	interpretation.DefaultCreatedAt = interpretationDescCreatedAt.Default.(func() time.Time)
	// interpretationDescUpdatedAt is the schema descriptor for updated_at field.
	interpretationDescUpdatedAt := interpretationFields[6].Descriptor()
	// interpretation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interpretation.DefaultUpdatedAt = interpretationDescUpdatedAt.Default.(func() time.Time)
	// interpretation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interpretation.UpdateDefaultUpdatedAt = interpretationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// interpretationDescID is the schema descriptor for id field.
	interpretationDescID := interpretationFields[0].Descriptor()
	// interpretation.DefaultID holds the default value on creation for the id field.
	interpretation.DefaultID = interpretationDescID.Default.(func() uuid.UUID)
	observationlinkFields := schema.ObservationLink{}.Fields()
	_ = observationlinkFields
	// observationlinkDescCreatedAt is the schema descriptor for created_at field.
	observationlinkDescCreatedAt := observationlinkFields[7].Descriptor()
	// observationlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	observationlink.DefaultCreatedAt = observationlinkDescCreatedAt.Default.(func() time.Time)
	// observationlinkDescID is the schema descriptor for id field.
	observationlinkDescID := observationlinkFields[0].Descriptor()
	// observationlink.DefaultID holds the default value on creation for the id field.
	observationlink.DefaultID = observationlinkDescID.Default.(func() uuid.UUID)
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescEnabled is the schema descriptor for enabled field.
	reminderDescEnabled := reminderFields[5].Descriptor()
	// reminder.DefaultEnabled holds the default value on creation for the enabled field.
	reminder.DefaultEnabled = reminderDescEnabled.Default.(bool)
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderFields[7].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	// reminderDescUpdatedAt is the schema descriptor for updated_at field.
	reminderDescUpdatedAt := reminderFields[8].Descriptor()
	// reminder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reminder.DefaultUpdatedAt = reminderDescUpdatedAt.Default.(func() time.Time)
	// reminder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reminder.UpdateDefaultUpdatedAt = reminderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reminderDescID is the schema descriptor for id field.
	reminderDescID := reminderFields[0].Descriptor()
	// reminder.DefaultID holds the default value on creation for the id field.
	reminder.DefaultID = reminderDescID.Default.(func() uuid.UUID)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescName is the schema descriptor for name field.
	templateDescName := templateFields[1].Descriptor()
	// template.NameValidator is a validator for the "name" field. It is called by the builders before save.
	template.NameValidator = func() func(string) error {
		validators := templateDescName.Validators
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
	// templateDescDescription is the schema descriptor for description field.
	templateDescDescription := templateFields[2].Descriptor()
	// template.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	template.DescriptionValidator = templateDescDescription.Validators[0].(func(string) error)
	// templateDescLocked is the schema descriptor for locked field.
	templateDescLocked := templateFields[4].Descriptor()
	// template.DefaultLocked holds the default value on creation for the locked field.
	template.DefaultLocked = templateDescLocked.Default.(bool)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[7].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	// templateDescUpdatedAt is the schema descriptor for updated_at field.
	templateDescUpdatedAt := templateFields[8].Descriptor()
	// template.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	template.DefaultUpdatedAt = templateDescUpdatedAt.Default.(func() time.Time)
	// template.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	template.UpdateDefaultUpdatedAt = templateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// templateDescID is the schema descriptor for id field.
	templateDescID := templateFields[0].Descriptor()
	// template.DefaultID holds the default value on creation for the id field.
	template.DefaultID = templateDescID.Default.(func() uuid.UUID)
	templatesharelinkFields := schema.TemplateShareLink{}.Fields()
	_ = templatesharelinkFields
	// templatesharelinkDescToken is the schema descriptor for token field.
	templatesharelinkDescToken := templatesharelinkFields[1].Descriptor()
	// templatesharelink.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	templatesharelink.TokenValidator = func() func(string) error {
		validators := templatesharelinkDescToken.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(token string) error {
			for _, fn := range fns {
				if err := fn(token); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// templatesharelinkDescMaxUses is the schema descriptor for max_uses field.
	templatesharelinkDescMaxUses := templatesharelinkFields[4].Descriptor()
	// templatesharelink.DefaultMaxUses holds the default value on creation for the max_uses field.
	templatesharelink.DefaultMaxUses = templatesharelinkDescMaxUses.Default.(int)
	// templatesharelinkDescUseCount is the schema descriptor for use_count field.
	templatesharelinkDescUseCount := templatesharelinkFields[5].Descriptor()
	// templatesharelink.DefaultUseCount holds the default value on creation for the use_count field.
	templatesharelink.DefaultUseCount = templatesharelinkDescUseCount.Default.(int)
	// templatesharelinkDescCreatedAt is the schema descriptor for created_at field.
	templatesharelinkDescCreatedAt := templatesharelinkFields[7].Descriptor()
	// templatesharelink.DefaultCreatedAt holds the default value on creation for the created_at field.
	templatesharelink.DefaultCreatedAt = templatesharelinkDescCreatedAt.Default.(func() time.Time)
	// templatesharelinkDescID is the schema descriptor for id field.
	templatesharelinkDescID := templatesharelinkFields[0].Descriptor()
	// templatesharelink.DefaultID holds the default value on creation for the id field.
	templatesharelink.DefaultID = templatesharelinkDescID.Default.(func() uuid.UUID)
	trackerFields := schema.Tracker{}.Fields()
	_ = trackerFields
	// trackerDescName is the schema descriptor for name field.
	trackerDescName := trackerFields[1].Descriptor()
	// tracker.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tracker.NameValidator = func() func(string) error {
		validators := trackerDescName.Validators
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
	// trackerDescDescription is the schema descriptor for description field.
	trackerDescDescription := trackerFields[2].Descriptor()
	// tracker.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	tracker.DescriptionValidator = trackerDescDescription.Validators[0].(func(string) error)
	// trackerDescDisplayOrder is the schema descriptor for display_order field.
	trackerDescDisplayOrder := trackerFields[5].Descriptor()
	// tracker.DefaultDisplayOrder holds the default value on creation for the display_order field.
	tracker.DefaultDisplayOrder = trackerDescDisplayOrder.Default.(int)
	// trackerDescIcon is the schema descriptor for icon field.
	trackerDescIcon := trackerFields[7].Descriptor()
	// tracker.IconValidator is a validator for the "icon" field. It is called by the builders before save.
	tracker.IconValidator = trackerDescIcon.Validators[0].(func(string) error)
	// trackerDescColor is the schema descriptor for color field.
	trackerDescColor := trackerFields[8].Descriptor()
	// tracker.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	tracker.ColorValidator = trackerDescColor.Validators[0].(func(string) error)
	// trackerDescCreatedAt is the schema descriptor for created_at field.
	trackerDescCreatedAt := trackerFields[10].Descriptor()
	// tracker.DefaultCreatedAt holds the default value on creation for the created_at field.
	tracker.DefaultCreatedAt = trackerDescCreatedAt.Default.(func() time.Time)
	// trackerDescUpdatedAt is the schema descriptor for updated_at field.
	trackerDescUpdatedAt := trackerFields[11].Descriptor()
	// tracker.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tracker.DefaultUpdatedAt = trackerDescUpdatedAt.Default.(func() time.Time)
	// tracker.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tracker.UpdateDefaultUpdatedAt = trackerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// trackerDescID is the schema descriptor for id field.
	trackerDescID := trackerFields[0].Descriptor()
	// tracker.DefaultID holds the default value on creation for the id field.
	tracker.DefaultID = trackerDescID.Default.(func() uuid.UUID)
	trackerentryFields := schema.TrackerEntry{}.Fields()
	_ = trackerentryFields
	// trackerentryDescEntryDate is the schema descriptor for entry_date field.
	trackerentryDescEntryDate := trackerentryFields[2].Descriptor()
	// trackerentry.EntryDateValidator is a validator for the "entry_date" field. It is called by the builders before save.
	trackerentry.EntryDateValidator = func() func(string) error {
		validators := trackerentryDescEntryDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entry_date string) error {
			for _, fn := range fns {
				if err := fn(entry_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// trackerentryDescSlot is the schema descriptor for slot field.
	trackerentryDescSlot := trackerentryFields[4].Descriptor()
	// trackerentry.DefaultSlot holds the default value on creation for the slot field.
	trackerentry.DefaultSlot = trackerentryDescSlot.Default.(int)
	// trackerentryDescNotes is the schema descriptor for notes field.
	trackerentryDescNotes := trackerentryFields[6].Descriptor()
	// trackerentry.NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	trackerentry.NotesValidator = trackerentryDescNotes.Validators[0].(func(string) error)
	// trackerentryDescCreatedAt is the schema descriptor for created_at field.
	trackerentryDescCreatedAt := trackerentryFields[7].Descriptor()
	// trackerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	trackerentry.DefaultCreatedAt = trackerentryDescCreatedAt.Default.(func() time.Time)
	// trackerentryDescUpdatedAt is the schema descriptor for updated_at field.
	trackerentryDescUpdatedAt := trackerentryFields[8].Descriptor()
	// trackerentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trackerentry.DefaultUpdatedAt = trackerentryDescUpdatedAt.Default.(func() time.Time)
	// trackerentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trackerentry.UpdateDefaultUpdatedAt = trackerentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// trackerentryDescID is the schema descriptor for id field.
	trackerentryDescID := trackerentryFields[0].Descriptor()
	// trackerentry.DefaultID holds the default value on creation for the id field.
	trackerentry.DefaultID = trackerentryDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[4].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
