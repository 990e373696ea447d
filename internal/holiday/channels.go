// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"strings"

	"shipfree/internal/models"
)

// Channel is a canonical distribution channel.
type Channel string

const (
	ChannelX           Channel = "x"
	ChannelInstagram   Channel = "instagram"
	ChannelLinkedIn    Channel = "linkedin"
	ChannelCommunities Channel = "communities"
	ChannelEmail       Channel = "email"
)

// channelAliases maps every accepted spelling to its canonical channel.
// Keys are display-case only.
var channelAliases = map[string]Channel{
	"X":           ChannelX,
	"Twitter":     ChannelX,
	"IG":          ChannelInstagram,
	"Instagram":   ChannelInstagram,
	"LinkedIn":    ChannelLinkedIn,
	"Comunidades": ChannelCommunities,
	"Communities": ChannelCommunities,
	"Email":       ChannelEmail,
}

// channelAction is an action template; the channel label is filled in from
// the caller's spelling.
type channelAction struct {
	action   string
	format   string
	priority models.Priority
}

var channelActions = map[Channel][]channelAction{
	ChannelX: {
		{"Hilo de lanzamiento (8-10 tweets) con propuesta de valor + link", "Thread con imágenes", models.PriorityAlta},
		{"3 tweets individuales (espaciados 4h) con distintos ángulos", "Tweet simple + imagen", models.PriorityMedia},
	},
	ChannelInstagram: {
		{"Carrusel (10 slides) explicando productos + precio + CTA en bio", "Carrusel 1:1", models.PriorityAlta},
		{"3 stories con sticker de link y countdown", "Story 9:16", models.PriorityAlta},
		{"Reel corto (30 seg) mostrando preview de productos", "Reel vertical", models.PriorityMedia},
	},
	ChannelLinkedIn: {
		{"Post largo (1200 chars) con storytelling + link en comentarios", "Post + PDF preview", models.PriorityAlta},
		{"Carrusel profesional (8 slides) con insights + oferta", "Document post", models.PriorityMedia},
	},
	ChannelCommunities: {
		{"Post en 2 comunidades relevantes (no spam, dar valor primero)", "Post contextualizado", models.PriorityMedia},
	},
	ChannelEmail: {
		{"Email a lista existente (si hay) anunciando lanzamiento", "Email HTML", models.PriorityAlta},
	},
}

// outreachAction closes every distribution plan.
var outreachAction = models.DistributionAction{
	Channel:  "Outreach Directo",
	Action:   "10 DMs personalizados a potenciales early adopters",
	Format:   "Mensaje 1:1",
	Priority: models.PriorityAlta,
}

// ResolveChannel returns the canonical channel for name. Matching is
// case-sensitive: the lowercased retry looks up the same display-case table,
// so "TWITTER", "x" and "ig" are not recognized.
func ResolveChannel(name string) (Channel, bool) {
	if c, ok := channelAliases[name]; ok {
		return c, true
	}
	c, ok := channelAliases[strings.ToLower(name)]
	return c, ok
}

// DistributionPlan expands each channel into its publishing actions, in
// channel order. Unknown channels contribute nothing. The direct outreach
// action is always appended.
func DistributionPlan(channels []string) []models.DistributionAction {
	var actions []models.DistributionAction
	for _, name := range channels {
		c, ok := ResolveChannel(name)
		if !ok {
			continue
		}
		for _, a := range channelActions[c] {
			actions = append(actions, models.DistributionAction{
				Channel:  name,
				Action:   a.action,
				Format:   a.format,
				Priority: a.priority,
			})
		}
	}
	return append(actions, outreachAction)
}
