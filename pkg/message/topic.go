package message

import (
	"fmt"

	pkgstrings "github.com/klwxsrx/social-profile-service/pkg/strings"
)

type (
	Topic          string
	SubscriberName string
)

func NewDomainEventTopic(domainName, aggregateName string) Topic {
	return Topic(fmt.Sprintf(
		"domain-event.%s.%s",
		pkgstrings.ToKebabCase(domainName),
		pkgstrings.ToKebabCase(aggregateName),
	))
}

func NewSubscriberName(domainName string) SubscriberName {
	return SubscriberName(fmt.Sprintf("%s-domain", pkgstrings.ToKebabCase(domainName)))
}
