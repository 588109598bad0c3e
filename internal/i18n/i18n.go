// Package i18n renders operator-facing messages in Brazilian Portuguese or
// English.
package i18n

import (
	"fmt"
	"strings"

	"portfolio-site/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable message.
type Key string

const (
	FetchFailed        Key = "fetch_failed"
	CreateFailed       Key = "create_failed"
	UpdateFailed       Key = "update_failed"
	DeleteFailed       Key = "delete_failed"
	ReorderFailed      Key = "reorder_failed"
	UploadFailed       Key = "upload_failed"
	UploadNotImage     Key = "upload_not_image"
	UploadTooLarge     Key = "upload_too_large"
	UploadMissing      Key = "upload_missing"
	InvalidInput       Key = "invalid_input"
	NotFound           Key = "not_found"
	Conflict           Key = "conflict"
	Unauthorized       Key = "unauthorized"
	InvalidCredentials Key = "invalid_credentials"
	SignUpDisabled     Key = "signup_disabled"
	AlreadyExists      Key = "already_exists"
	Internal           Key = "internal"
)

var (
	PortugueseBR = language.BrazilianPortuguese
	English      = language.English
)

type entry struct {
	key Key
	pt  string
	en  string
}

var messages = []entry{
	{FetchFailed, "Não foi possível carregar %s. Tente novamente mais tarde.", "Could not load %s. Please try again later."},
	{CreateFailed, "Não foi possível criar %s. Tente novamente mais tarde.", "Could not create %s. Please try again later."},
	{UpdateFailed, "Não foi possível atualizar %s. Tente novamente mais tarde.", "Could not update %s. Please try again later."},
	{DeleteFailed, "Não foi possível excluir %s. Tente novamente mais tarde.", "Could not delete %s. Please try again later."},
	{ReorderFailed, "Não foi possível reordenar %s. Tente novamente mais tarde.", "Could not reorder %s. Please try again later."},
	{UploadFailed, "Falha ao fazer upload da imagem. Tente novamente.", "Image upload failed. Please try again."},
	{UploadNotImage, "Por favor, faça upload apenas de imagens.", "Please upload image files only."},
	{UploadTooLarge, "A imagem deve ter menos de %dMB.", "The image must be smaller than %dMB."},
	{UploadMissing, "Selecione uma imagem para fazer upload.", "Select an image to upload."},
	{InvalidInput, "Dados inválidos.", "Invalid data."},
	{NotFound, "Registro não encontrado.", "Record not found."},
	{Conflict, "Este item foi alterado em outra sessão. A lista foi atualizada.", "This item was changed in another session. The list has been refreshed."},
	{Unauthorized, "Sessão inválida ou expirada.", "Invalid or expired session."},
	{InvalidCredentials, "E-mail ou senha inválidos.", "Invalid email or password."},
	{SignUpDisabled, "O cadastro está desativado.", "Sign-up is disabled."},
	{AlreadyExists, "Já existe um registro com esses dados.", "A record with these details already exists."},
	{Internal, "Erro interno. Tente novamente mais tarde.", "Internal error. Please try again later."},
}

// nouns holds each collection's name with its article, singular then plural.
var nouns = map[domain.Collection][2]entry{
	domain.CollectionProjects: {
		{pt: "o projeto", en: "the project"},
		{pt: "os projetos", en: "the projects"},
	},
	domain.CollectionHackathons: {
		{pt: "o hackathon", en: "the hackathon"},
		{pt: "os hackathons", en: "the hackathons"},
	},
	domain.CollectionExperiences: {
		{pt: "a experiência", en: "the experience"},
		{pt: "as experiências", en: "the experiences"},
	},
	domain.CollectionLinks: {
		{pt: "o link", en: "the link"},
		{pt: "os links", en: "the links"},
	},
}

// Translator resolves locales and formats messages.
type Translator struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
}

// New builds a Translator whose fallback is defaultLocale, or pt-BR when
// defaultLocale is not supported.
func New(defaultLocale string) *Translator {
	supported := []language.Tag{PortugueseBR, English}
	if tag, err := language.Parse(defaultLocale); err == nil {
		if base, _ := tag.Base(); base.String() == "en" {
			supported = []language.Tag{English, PortugueseBR}
		}
	}
	fallback := supported[0]

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for _, m := range messages {
		mustSet(b, PortugueseBR, string(m.key), m.pt)
		mustSet(b, English, string(m.key), m.en)
	}
	for coll, forms := range nouns {
		for i, suffix := range []string{"one", "many"} {
			key := nounKey(coll, suffix)
			mustSet(b, PortugueseBR, key, forms[i].pt)
			mustSet(b, English, key, forms[i].en)
		}
	}

	return &Translator{
		catalog:   b,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Default is the fallback locale.
func (t *Translator) Default() language.Tag {
	return t.supported[0]
}

// Resolve picks a supported locale from an explicit ?lang= value, then the
// Accept-Language header.
func (t *Translator) Resolve(lang, acceptLanguage string) language.Tag {
	var tags []language.Tag
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 && acceptLanguage != "" {
		parsed, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			tags = parsed
		}
	}
	if len(tags) == 0 {
		return t.Default()
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.Default()
	}
	return t.supported[idx]
}

// Printer returns a printer bound to tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Message formats key in tag.
func (t *Translator) Message(tag language.Tag, key Key, args ...any) string {
	return t.Printer(tag).Sprintf(string(key), args...)
}

// OpFailed renders the operator message for a failed admin action on coll.
func (t *Translator) OpFailed(tag language.Tag, op string, coll domain.Collection) string {
	var (
		key    Key
		plural bool
	)
	switch op {
	case "fetch":
		key, plural = FetchFailed, true
	case "create":
		key = CreateFailed
	case "update":
		key = UpdateFailed
	case "delete":
		key = DeleteFailed
	case "reorder":
		key, plural = ReorderFailed, true
	case "upload":
		return t.Message(tag, UploadFailed)
	default:
		return t.Message(tag, Internal)
	}
	if _, ok := nouns[coll]; !ok {
		return t.Message(tag, Internal)
	}
	p := t.Printer(tag)
	suffix := "one"
	if plural {
		suffix = "many"
	}
	return p.Sprintf(string(key), p.Sprintf(nounKey(coll, suffix)))
}

func nounKey(coll domain.Collection, suffix string) string {
	return "noun." + string(coll) + "." + suffix
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
	}
}
