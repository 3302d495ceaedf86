// Package cdpagent provides a support agent for Customer Data Platform
// (CDP) questions. It classifies which CDP and task a free-text question
// refers to, retrieves the relevant vendor documentation page, and asks a
// language model to answer using that page as context.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, ollama/, gocache/).
package cdpagent
