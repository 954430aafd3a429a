package override

import "sitesettings/internal/settings"

// Overrides is the entry point tests use to install and reset settings.
type Overrides struct {
	holder  *Holder
	builder *Builder
}

// New ties a holder to the builder that supplies its defaults.
func New(holder *Holder, builder *Builder) *Overrides {
	return &Overrides{holder: holder, builder: builder}
}

// Holder returns the holder code under test reads from.
func (o *Overrides) Holder() *Holder {
	return o.holder
}

// Builder returns the defaults builder.
func (o *Overrides) Builder() *Builder {
	return o.builder
}

// OverrideFlat installs instance as the active flat settings. The cached
// default is left untouched.
func (o *Overrides) OverrideFlat(instance settings.Flat) {
	o.holder.SetFlat(instance)
}

// OverrideSectioned installs instance as the active sectioned settings. The
// cached default is left untouched.
func (o *Overrides) OverrideSectioned(instance settings.Sectioned) {
	o.holder.SetSectioned(instance)
}

// Reset drops the cached defaults and installs freshly built ones for both
// domains, discarding any override. If the sectioned defaults cannot be
// built the error is returned and the holder is left as it was; callers
// should treat that as a fatal setup failure.
func (o *Overrides) Reset() error {
	o.builder.InvalidateCaches()

	sectioned, err := o.builder.DefaultSectioned()
	if err != nil {
		return err
	}
	o.holder.installSectioned(sectioned, StateDefault)
	o.holder.installFlat(o.builder.DefaultFlat(), StateDefault)
	return nil
}
