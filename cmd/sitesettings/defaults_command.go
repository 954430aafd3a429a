package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"sitesettings/internal/logging"
	"sitesettings/internal/override"
	"sitesettings/internal/settings"
)

type settingField struct {
	key   string
	value any
}

type settingSection struct {
	name   string
	fields []settingField
}

func newDefaultsCommand(ctx *commandContext) *cobra.Command {
	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show the default settings of a domain",
	}
	defaultsCmd.AddCommand(newDefaultsFlatCommand(ctx))
	defaultsCmd.AddCommand(newDefaultsSectionedCommand(ctx))
	return defaultsCmd
}

func newDefaultsFlatCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "flat",
		Short: "Show the flat defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := ctx.overrides()
			if err != nil {
				return err
			}
			flat := o.Builder().DefaultFlat()
			ctx.componentLogger("defaults").Debug("built defaults", logging.FieldDomain, override.DomainFlat.String())
			return renderSections(cmd, []settingSection{flatSection(flat)}, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDefaultsSectionedCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sectioned",
		Short: "Show the sectioned defaults, fixture values included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := ctx.overrides()
			if err != nil {
				return err
			}
			logger := ctx.componentLogger("defaults")
			if err := o.Reset(); err != nil {
				logger.Error("build sectioned defaults", logging.Error(err))
				return err
			}
			sectioned, err := o.Holder().Sectioned()
			if err != nil {
				return err
			}
			path, _ := o.Builder().SourcePath()
			logger.Debug("built defaults",
				logging.FieldDomain, override.DomainSectioned.String(),
				logging.FieldPath, path,
			)
			return renderSections(cmd, sectionedSections(sectioned), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func flatSection(f settings.Flat) settingSection {
	return settingSection{
		name: "flat",
		fields: []settingField{
			{"configuration_status", f.ConfigurationStatus()},
			{"use_https", f.UseHTTPS()},
			{"hide_top_level_node_from_path", f.HideTopLevelNodeFromPath()},
			{"path", f.Path()},
			{"use_directory_urls", f.UseDirectoryURLs()},
			{"timeout_minutes", f.TimeoutMinutes()},
			{"default_ui_language", f.DefaultUILanguage()},
			{"local_temp_storage", f.LocalTempStorage().String()},
			{"reserved_paths", sortedSet(f.ReservedPaths())},
			{"reserved_urls", sortedSet(f.ReservedURLs())},
		},
	}
}

func sectionedSections(s settings.Sectioned) []settingSection {
	content := s.Content()
	security := s.Security()
	handler := s.RequestHandler()
	templates := s.Templates()
	logs := s.Logging()
	tasks := s.ScheduledTasks()
	routing := s.WebRouting()
	return []settingSection{
		{"content", []settingField{
			{"force_safe_aliases", content.ForceSafeAliases()},
			{"image_autofill_properties", content.ImageAutoFillProperties()},
			{"image_file_types", content.ImageFileTypes()},
			{"library_cache_duration", content.LibraryCacheDuration()},
			{"notification_email", content.NotificationEmail()},
			{"disallowed_upload_files", content.DisallowedUploadFiles()},
		}},
		{"security", []settingField{
			{"keep_user_logged_in", security.KeepUserLoggedIn()},
			{"hide_disabled_users_in_backoffice", security.HideDisabledUsersInBackOffice()},
			{"auth_cookie_name", security.AuthCookieName()},
			{"auth_cookie_domain", security.AuthCookieDomain()},
		}},
		{"request_handler", []settingField{
			{"add_trailing_slash", handler.AddTrailingSlash()},
			{"use_domain_prefixes", handler.UseDomainPrefixes()},
			{"char_replacements", handler.CharReplacements()},
			{"convert_urls_to_ascii", handler.ConvertURLsToASCII()},
		}},
		{"templates", []settingField{
			{"default_rendering_engine", templates.DefaultRenderingEngine().String()},
			{"enable_skin_support", templates.EnableSkinSupport()},
		}},
		{"logging", []settingField{
			{"auto_clean_logs", logs.AutoCleanLogs()},
			{"cleaning_minutes", logs.CleaningMinutes()},
			{"max_log_age_minutes", logs.MaxLogAgeMinutes()},
		}},
		{"scheduled_tasks", []settingField{
			{"base_url", tasks.BaseURL()},
			{"tasks", tasks.Tasks()},
		}},
		{"providers", []settingField{
			{"default_backoffice_user_provider", s.Providers().DefaultBackOfficeUserProvider()},
		}},
		{"web_routing", []settingField{
			{"url_provider_mode", routing.URLProviderMode()},
			{"disable_alternative_templates", routing.DisableAlternativeTemplates()},
			{"internal_redirect_preserves_template", routing.InternalRedirectPreservesTemplate()},
		}},
	}
}

// renderSections writes a single section flat and several sections keyed by
// section name.
func renderSections(cmd *cobra.Command, sections []settingSection, asJSON bool) error {
	if asJSON {
		if len(sections) == 1 {
			return writeJSON(cmd, sectionMap(sections[0]))
		}
		out := make(map[string]map[string]any, len(sections))
		for _, section := range sections {
			out[section.name] = sectionMap(section)
		}
		return writeJSON(cmd, out)
	}

	var rows []keyValue
	for _, section := range sections {
		for _, field := range section.fields {
			key := field.key
			if len(sections) > 1 {
				key = section.name + "." + key
			}
			rows = append(rows, keyValue{key: key, value: formatSetting(field.value)})
		}
	}
	return writeKeyValues(cmd.OutOrStdout(), rows)
}

func sectionMap(section settingSection) map[string]any {
	out := make(map[string]any, len(section.fields))
	for _, field := range section.fields {
		out[field.key] = field.value
	}
	return out
}

func formatSetting(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ",")
	case []settings.ImageAutoFill:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprintf("%s(%s,%s,%s,%s)", p.Alias, p.WidthField, p.HeightField, p.LengthField, p.ExtensionField))
		}
		return strings.Join(parts, " ")
	case []settings.CharReplacement:
		parts := make([]string, 0, len(v))
		for _, r := range v {
			parts = append(parts, fmt.Sprintf("%q:%q", r.Char, r.Replacement))
		}
		return strings.Join(parts, " ")
	case []settings.ScheduledTask:
		parts := make([]string, 0, len(v))
		for _, task := range v {
			parts = append(parts, fmt.Sprintf("%s@%ds:%s", task.Alias, task.Interval, task.URL))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

func sortedSet(set mapset.Set[string]) []string {
	values := set.ToSlice()
	slices.Sort(values)
	return values
}
