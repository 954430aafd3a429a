package settings

import (
	"fmt"
	"strings"
)

const (
	defaultLibraryCacheDuration = 1800
	defaultURLProviderMode      = "AutoLegacy"
	defaultBackOfficeProvider   = "UsersMembershipProvider"
)

// RenderingEngine selects how templates are rendered.
type RenderingEngine int

const (
	RenderingEngineMVC RenderingEngine = iota
	RenderingEngineWebForms
)

func (e RenderingEngine) String() string {
	switch e {
	case RenderingEngineMVC:
		return "Mvc"
	case RenderingEngineWebForms:
		return "WebForms"
	default:
		return fmt.Sprintf("RenderingEngine(%d)", int(e))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e RenderingEngine) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *RenderingEngine) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "mvc":
		*e = RenderingEngineMVC
	case "webforms":
		*e = RenderingEngineWebForms
	default:
		return fmt.Errorf("unknown rendering engine %q", string(text))
	}
	return nil
}

// ImageAutoFill maps an upload property to the fields filled from the image.
type ImageAutoFill struct {
	Alias          string `toml:"alias" yaml:"alias" json:"alias"`
	WidthField     string `toml:"width_field" yaml:"width_field" json:"width_field"`
	HeightField    string `toml:"height_field" yaml:"height_field" json:"height_field"`
	LengthField    string `toml:"length_field" yaml:"length_field" json:"length_field"`
	ExtensionField string `toml:"extension_field" yaml:"extension_field" json:"extension_field"`
}

// CharReplacement replaces Char with Replacement in generated URL segments.
type CharReplacement struct {
	Char        string `toml:"char" yaml:"char" json:"char"`
	Replacement string `toml:"replacement" yaml:"replacement" json:"replacement"`
}

// ScheduledTask is a URL pinged every Interval seconds.
type ScheduledTask struct {
	Alias    string `toml:"alias" yaml:"alias" json:"alias"`
	Interval int    `toml:"interval" yaml:"interval" json:"interval"`
	Log      bool   `toml:"log" yaml:"log" json:"log"`
	URL      string `toml:"url" yaml:"url" json:"url"`
}

type Content interface {
	ForceSafeAliases() bool
	ImageAutoFillProperties() []ImageAutoFill
	ImageFileTypes() []string
	// LibraryCacheDuration is in seconds.
	LibraryCacheDuration() int
	NotificationEmail() string
	DisallowedUploadFiles() []string
}

type Security interface {
	KeepUserLoggedIn() bool
	HideDisabledUsersInBackOffice() bool
	AuthCookieName() string
	AuthCookieDomain() string
}

type RequestHandler interface {
	AddTrailingSlash() bool
	UseDomainPrefixes() bool
	CharReplacements() []CharReplacement
	ConvertURLsToASCII() bool
}

type Templates interface {
	DefaultRenderingEngine() RenderingEngine
	EnableSkinSupport() bool
}

type Logging interface {
	AutoCleanLogs() bool
	CleaningMinutes() int
	MaxLogAgeMinutes() int
}

type ScheduledTasks interface {
	BaseURL() string
	Tasks() []ScheduledTask
}

type Providers interface {
	DefaultBackOfficeUserProvider() string
}

type WebRouting interface {
	URLProviderMode() string
	DisableAlternativeTemplates() bool
	InternalRedirectPreservesTemplate() bool
}

// Sectioned is the sectioned settings domain.
type Sectioned interface {
	Content() Content
	Security() Security
	RequestHandler() RequestHandler
	Templates() Templates
	Logging() Logging
	ScheduledTasks() ScheduledTasks
	Providers() Providers
	WebRouting() WebRouting
}

type ContentSection struct {
	SafeAliases        bool            `toml:"force_safe_aliases" yaml:"force_safe_aliases"`
	AutoFillProperties []ImageAutoFill `toml:"image_autofill_properties" yaml:"image_autofill_properties"`
	FileTypes          []string        `toml:"image_file_types" yaml:"image_file_types"`
	CacheDuration      int             `toml:"library_cache_duration" yaml:"library_cache_duration"`
	Email              string          `toml:"notification_email" yaml:"notification_email"`
	DisallowedUploads  []string        `toml:"disallowed_upload_files" yaml:"disallowed_upload_files"`
}

func (s ContentSection) ForceSafeAliases() bool                   { return s.SafeAliases }
func (s ContentSection) ImageAutoFillProperties() []ImageAutoFill { return s.AutoFillProperties }
func (s ContentSection) ImageFileTypes() []string                 { return s.FileTypes }
func (s ContentSection) LibraryCacheDuration() int                { return s.CacheDuration }
func (s ContentSection) NotificationEmail() string                { return s.Email }
func (s ContentSection) DisallowedUploadFiles() []string          { return s.DisallowedUploads }

type SecuritySection struct {
	KeepLoggedIn      bool   `toml:"keep_user_logged_in" yaml:"keep_user_logged_in"`
	HideDisabledUsers bool   `toml:"hide_disabled_users_in_backoffice" yaml:"hide_disabled_users_in_backoffice"`
	CookieName        string `toml:"auth_cookie_name" yaml:"auth_cookie_name"`
	CookieDomain      string `toml:"auth_cookie_domain" yaml:"auth_cookie_domain"`
}

func (s SecuritySection) KeepUserLoggedIn() bool              { return s.KeepLoggedIn }
func (s SecuritySection) HideDisabledUsersInBackOffice() bool { return s.HideDisabledUsers }
func (s SecuritySection) AuthCookieName() string              { return s.CookieName }
func (s SecuritySection) AuthCookieDomain() string            { return s.CookieDomain }

type RequestHandlerSection struct {
	TrailingSlash  bool              `toml:"add_trailing_slash" yaml:"add_trailing_slash"`
	DomainPrefixes bool              `toml:"use_domain_prefixes" yaml:"use_domain_prefixes"`
	CharCollection []CharReplacement `toml:"char_replacements" yaml:"char_replacements"`
	ASCIIURLs      bool              `toml:"convert_urls_to_ascii" yaml:"convert_urls_to_ascii"`
}

func (s RequestHandlerSection) AddTrailingSlash() bool              { return s.TrailingSlash }
func (s RequestHandlerSection) UseDomainPrefixes() bool             { return s.DomainPrefixes }
func (s RequestHandlerSection) CharReplacements() []CharReplacement { return s.CharCollection }
func (s RequestHandlerSection) ConvertURLsToASCII() bool            { return s.ASCIIURLs }

type TemplatesSection struct {
	RenderingEngine RenderingEngine `toml:"default_rendering_engine" yaml:"default_rendering_engine"`
	SkinSupport     bool            `toml:"enable_skin_support" yaml:"enable_skin_support"`
}

func (s TemplatesSection) DefaultRenderingEngine() RenderingEngine { return s.RenderingEngine }
func (s TemplatesSection) EnableSkinSupport() bool                 { return s.SkinSupport }

type LoggingSection struct {
	AutoClean   bool `toml:"auto_clean_logs" yaml:"auto_clean_logs"`
	CleaningMin int  `toml:"cleaning_minutes" yaml:"cleaning_minutes"`
	MaxAgeMin   int  `toml:"max_log_age_minutes" yaml:"max_log_age_minutes"`
}

func (s LoggingSection) AutoCleanLogs() bool   { return s.AutoClean }
func (s LoggingSection) CleaningMinutes() int  { return s.CleaningMin }
func (s LoggingSection) MaxLogAgeMinutes() int { return s.MaxAgeMin }

type ScheduledTasksSection struct {
	Base    string          `toml:"base_url" yaml:"base_url"`
	TaskSet []ScheduledTask `toml:"tasks" yaml:"tasks"`
}

func (s ScheduledTasksSection) BaseURL() string        { return s.Base }
func (s ScheduledTasksSection) Tasks() []ScheduledTask { return s.TaskSet }

type ProvidersSection struct {
	BackOfficeUserProvider string `toml:"default_backoffice_user_provider" yaml:"default_backoffice_user_provider"`
}

func (s ProvidersSection) DefaultBackOfficeUserProvider() string { return s.BackOfficeUserProvider }

type WebRoutingSection struct {
	ProviderMode              string `toml:"url_provider_mode" yaml:"url_provider_mode"`
	NoAlternativeTemplates    bool   `toml:"disable_alternative_templates" yaml:"disable_alternative_templates"`
	RedirectPreservesTemplate bool   `toml:"internal_redirect_preserves_template" yaml:"internal_redirect_preserves_template"`
}

func (s WebRoutingSection) URLProviderMode() string                 { return s.ProviderMode }
func (s WebRoutingSection) DisableAlternativeTemplates() bool       { return s.NoAlternativeTemplates }
func (s WebRoutingSection) InternalRedirectPreservesTemplate() bool { return s.RedirectPreservesTemplate }

// SectionedConfig is the value implementation of Sectioned. Each section is
// its own TOML/YAML table.
type SectionedConfig struct {
	ContentSection        ContentSection        `toml:"content" yaml:"content"`
	SecuritySection       SecuritySection       `toml:"security" yaml:"security"`
	RequestHandlerSection RequestHandlerSection `toml:"request_handler" yaml:"request_handler"`
	TemplatesSection      TemplatesSection      `toml:"templates" yaml:"templates"`
	LoggingSection        LoggingSection        `toml:"logging" yaml:"logging"`
	ScheduledTasksSection ScheduledTasksSection `toml:"scheduled_tasks" yaml:"scheduled_tasks"`
	ProvidersSection      ProvidersSection      `toml:"providers" yaml:"providers"`
	WebRoutingSection     WebRoutingSection     `toml:"web_routing" yaml:"web_routing"`
}

func (c *SectionedConfig) Content() Content               { return &c.ContentSection }
func (c *SectionedConfig) Security() Security             { return &c.SecuritySection }
func (c *SectionedConfig) RequestHandler() RequestHandler { return &c.RequestHandlerSection }
func (c *SectionedConfig) Templates() Templates           { return &c.TemplatesSection }
func (c *SectionedConfig) Logging() Logging               { return &c.LoggingSection }
func (c *SectionedConfig) ScheduledTasks() ScheduledTasks { return &c.ScheduledTasksSection }
func (c *SectionedConfig) Providers() Providers           { return &c.ProvidersSection }
func (c *SectionedConfig) WebRouting() WebRouting         { return &c.WebRoutingSection }

// GenerateSectioned returns a fresh SectionedConfig holding the literal
// factory defaults. Sections without literal defaults are left zero.
func GenerateSectioned() *SectionedConfig {
	return &SectionedConfig{
		ContentSection: ContentSection{
			SafeAliases:        true,
			AutoFillProperties: DefaultImageAutoFillProperties(),
			FileTypes:          DefaultImageFileTypes(),
			CacheDuration:      defaultLibraryCacheDuration,
		},
		RequestHandlerSection: RequestHandlerSection{
			TrailingSlash:  true,
			DomainPrefixes: false,
			CharCollection: DefaultCharReplacements(),
		},
		TemplatesSection: TemplatesSection{
			RenderingEngine: RenderingEngineMVC,
		},
		ProvidersSection: ProvidersSection{
			BackOfficeUserProvider: defaultBackOfficeProvider,
		},
		WebRoutingSection: WebRoutingSection{
			ProviderMode: defaultURLProviderMode,
		},
	}
}
