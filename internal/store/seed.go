// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates an empty database with the starter articles. It is
// idempotent: if any posts already exist, nothing is inserted.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	count, err := queries.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		slog.Debug("Seed skipped, posts already present", "count", count)
		return nil
	}

	for _, p := range seedPosts {
		if _, err := queries.CreatePost(ctx, p); err != nil {
			return fmt.Errorf("seed post %q: %w", p.Slug, err)
		}
	}

	slog.Info("Database seeded with starter posts", "count", len(seedPosts))
	return nil
}

var seedPosts = []CreatePostParams{
	{
		Title: "Introduction to Calculus: Limits and Continuity",
		Slug:  "intro-to-calculus-limits",
		Content: `Calculus is the mathematical study of continuous change. It has two major branches: differential calculus and integral calculus.

### The Concept of a Limit

The limit is a fundamental concept in calculus. It describes the value that a function (or sequence) approaches as the input (or index) approaches some value.

$$ \lim_{x \to c} f(x) = L $$

This means that as $x$ gets closer and closer to $c$, $f(x)$ gets closer and closer to $L$.

### Continuity

A function is continuous at a point if the limit exists at that point, the function is defined at that point, and the limit equals the function value.

$$ \lim_{x \to c} f(x) = f(c) $$

Continuity is essential for the Intermediate Value Theorem and many other properties in analysis.`,
		Summary:    "Understand the fundamental building blocks of Calculus: limits and continuity. Essential for beginners.",
		ReadTime:   5,
		Difficulty: "Beginner",
		Topic:      "Calculus",
		AuthorName: "Dr. Sarah Mitchell",
		AuthorRole: "Professor of Mathematics",
		CoverUrl: sql.NullString{
			String: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80",
			Valid:  true,
		},
	},
	{
		Title: "Understanding Linear Algebra: Vectors and Matrices",
		Slug:  "understanding-linear-algebra",
		Content: `Linear algebra is the branch of mathematics concerning linear equations and their representations in vector spaces and through matrices.

### Vectors

A vector is an object that has both a magnitude and a direction. Geometrically, we can picture a vector as a directed line segment.

$$ \mathbf{v} = \begin{bmatrix} v_1 \\ v_2 \\ v_3 \end{bmatrix} $$

### Matrix Multiplication

Matrix multiplication is a fundamental operation. If $A$ is an $m \times n$ matrix and $B$ is an $n \times p$ matrix, their matrix product $AB$ is an $m \times p$ matrix.

$$ (AB)_{ij} = \sum_{k=1}^n A_{ik} B_{kj} $$

Linear algebra is fundamental to modern geometry, including defining basic objects such as lines, planes, and rotations.`,
		Summary:    "Dive into the world of vectors and matrices. A crucial topic for computer science and physics.",
		ReadTime:   8,
		Difficulty: "Intermediate",
		Topic:      "Linear Algebra",
		AuthorName: "James Chen",
		AuthorRole: "Data Scientist",
		CoverUrl: sql.NullString{
			String: "https://images.unsplash.com/photo-1509228468518-180dd4864904?auto=format&fit=crop&q=80",
			Valid:  true,
		},
	},
	{
		Title: "Number Theory: The Beauty of Prime Numbers",
		Slug:  "number-theory-primes",
		Content: `Number theory is a branch of pure mathematics devoted primarily to the study of the integers and integer-valued functions.

### Prime Numbers

A prime number is a natural number greater than 1 that is not a product of two smaller natural numbers.

The sequence of prime numbers starts:
2, 3, 5, 7, 11, 13, 17, 19, 23, ...

### The Fundamental Theorem of Arithmetic

Every integer greater than 1 either is a prime number itself or can be represented as the product of prime numbers in a unique way.

$$ n = p_1^{a_1} p_2^{a_2} \cdots p_k^{a_k} $$

This theorem is the reason why prime numbers are often referred to as the "building blocks" of the integers.`,
		Summary:    "Explore the fascinating properties of prime numbers and modular arithmetic.",
		ReadTime:   6,
		Difficulty: "Beginner",
		Topic:      "Number Theory",
		AuthorName: "Dr. Sarah Mitchell",
		AuthorRole: "Professor of Mathematics",
		CoverUrl: sql.NullString{
			String: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80",
			Valid:  true,
		},
	},
	{
		Title: "Probability Theory: Bayes' Theorem",
		Slug:  "probability-bayes-theorem",
		Content: `Probability theory is the branch of mathematics concerned with probability. Although there are several different probability interpretations, probability theory treats the concept in a rigorous mathematical manner.

### Bayes' Theorem

Bayes' theorem describes the probability of an event, based on prior knowledge of conditions that might be related to the event.

$$ P(A|B) = \frac{P(B|A) P(A)}{P(B)} $$

Where:
- $P(A|B)$ is the probability of event A occurring given that B is true.
- $P(B|A)$ is the probability of event B occurring given that A is true.
- $P(A)$ and $P(B)$ are the probabilities of observing A and B independently.

Bayes' theorem is central to Bayesian inference, a statistical approach used in machine learning and data analysis.`,
		Summary:    "Learn how to update probabilities with new evidence using Bayes' Theorem.",
		ReadTime:   10,
		Difficulty: "Advanced",
		Topic:      "Probability",
		AuthorName: "Elena Rodriguez",
		AuthorRole: "Statistician",
		CoverUrl: sql.NullString{
			String: "https://images.unsplash.com/photo-1509228468518-180dd4864904?auto=format&fit=crop&q=80",
			Valid:  true,
		},
	},
}
